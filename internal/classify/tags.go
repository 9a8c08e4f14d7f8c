package classify

import "strings"

func makeSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, item := range strings.Split(list, ",") {
		set[item] = true
	}

	return set
}

var (
	htmlTags = makeSet("html,body,base,head,link,meta,style,title,address,article,aside,footer," +
		"header,hgroup,h1,h2,h3,h4,h5,h6,nav,section,div,dd,dl,dt,figcaption," +
		"figure,picture,hr,img,li,main,ol,p,pre,ul,a,b,abbr,bdi,bdo,br,cite,code," +
		"data,dfn,em,i,kbd,mark,q,rp,rt,ruby,s,samp,small,span,strong,sub,sup," +
		"time,u,var,wbr,area,audio,map,track,video,embed,object,param,source," +
		"canvas,script,noscript,del,ins,caption,col,colgroup,table,thead,tbody,td," +
		"th,tr,button,datalist,fieldset,form,input,label,legend,meter,optgroup," +
		"option,output,progress,select,textarea,details,dialog,menu," +
		"summary,template,blockquote,iframe,tfoot")

	svgTags = makeSet("svg,animate,animateMotion,animateTransform,circle,clipPath,color-profile," +
		"defs,desc,discard,ellipse,feBlend,feColorMatrix,feComponentTransfer," +
		"feComposite,feConvolveMatrix,feDiffuseLighting,feDisplacementMap," +
		"feDistantLight,feDropShadow,feFlood,feFuncA,feFuncB,feFuncG,feFuncR," +
		"feGaussianBlur,feImage,feMerge,feMergeNode,feMorphology,feOffset," +
		"fePointLight,feSpecularLighting,feSpotLight,feTile,feTurbulence,filter," +
		"foreignObject,g,hatch,hatchpath,image,line,linearGradient,marker,mask," +
		"mesh,meshgradient,meshpatch,meshrow,metadata,mpath,path,pattern," +
		"polygon,polyline,radialGradient,rect,set,solidcolor,stop,switch,symbol," +
		"text,textPath,title,tspan,unknown,use,view")

	mathMLTags = makeSet("annotation,annotation-xml,maction,maligngroup,malignmark,math,menclose," +
		"merror,mfenced,mfrac,mfraction,mglyph,mi,mlabeledtr,mlongdiv," +
		"mmultiscripts,mn,mo,mover,mpadded,mphantom,mprescripts,mroot,mrow,ms," +
		"mscarries,mscarry,msgroup,msline,mspace,msqrt,msrow,mstack,mstyle,msub," +
		"msubsup,msup,mtable,mtd,mtext,mtr,munder,munderover,none,semantics")

	htmlGlobalAttrs = makeSet("accesskey,autocapitalize,autofocus,class,contenteditable,dir," +
		"draggable,enterkeyhint,hidden,id,inert,inputmode,lang,nonce,popover," +
		"spellcheck,style,tabindex,title,translate")

	svgGlobalAttrs = makeSet("class,id,lang,style,tabindex,xml:base,xml:lang,xml:space")

	mathMLGlobalAttrs = makeSet("autofocus,dir,displaystyle,href,id,mathbackground,mathcolor," +
		"mathsize,mathvariant,nonce,scriptlevel,style,tabindex")
)

// IsHTMLTag reports whether tag is a known HTML element name.
func IsHTMLTag(tag string) bool { return htmlTags[tag] }

// IsSVGTag reports whether tag is a known SVG element name.
func IsSVGTag(tag string) bool { return svgTags[tag] }

// IsMathMLTag reports whether tag is a known MathML element name.
func IsMathMLTag(tag string) bool { return mathMLTags[tag] }

// IsHTMLGlobalAttr reports whether key is a global HTML attribute.
func IsHTMLGlobalAttr(key string) bool { return htmlGlobalAttrs[key] }

// IsSVGGlobalAttr reports whether key is a global SVG attribute.
func IsSVGGlobalAttr(key string) bool { return svgGlobalAttrs[key] }

// IsMathMLGlobalAttr reports whether key is a global MathML attribute.
func IsMathMLGlobalAttr(key string) bool { return mathMLGlobalAttrs[key] }

// ShouldSetAsAttr reports whether a key must go through setAttribute on
// the given upper-case tag even though a DOM property of the same name
// exists.
func ShouldSetAsAttr(tagName, key string) bool {
	switch key {
	// enumerated attributes whose DOM properties are booleans
	case "spellcheck", "draggable", "translate", "autocorrect":
		return true
	// read-only on form elements
	case "form":
		return true
	case "list":
		return tagName == "INPUT"
	case "type":
		return tagName == "TEXTAREA"
	case "width", "height":
		switch tagName {
		case "IMG", "VIDEO", "CANVAS", "SOURCE":
			return true
		}
	}

	return false
}

// CanSetValueDirectly reports whether `value` on the upper-case tag can be
// written through the dedicated value setter.
func CanSetValueDirectly(tagName string) bool {
	return tagName != "PROGRESS" && !strings.Contains(tagName, "-")
}
