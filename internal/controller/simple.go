package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "vapor.dev/pkg/vapor/internal/model"
)

// SimpleUI implements UI by printing to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCompileResults prints one row per artifact followed by the diffs
// of stale artifacts and the errors of failed ones.
func (s *SimpleUI) DisplayCompileResults(ctx context.Context, artifacts []m.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(artifacts) == 0 {
		s.printf("no %s sources found\n", m.IRExtension)
		return nil
	}

	s.printf("\n%s", renderCompileTable(artifacts))

	for _, a := range artifacts {
		switch a.Status {
		case m.Stale:
			s.printf("\n%s", a.Diff)
		case m.Failed:
			s.printf("\n%s: %v\n", a.Source.ShortPath, a.Err)
		}
	}

	return nil
}

func renderCompileTable(artifacts []m.Artifact) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Artifact", "Helpers", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	counts := map[m.ArtifactStatus]int{}

	for _, a := range artifacts {
		counts[a.Status]++
		table.Append([]string{
			string(a.Source.ShortPath),
			string(a.Source.Artifact),
			fmt.Sprintf("%d", len(a.Helpers)),
			a.Status.String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(artifacts)),
		"",
		"",
		summarize(counts),
	})

	table.Render()

	return tableBuffer.String()
}

func summarize(counts map[m.ArtifactStatus]int) string {
	var parts []string

	for _, status := range []m.ArtifactStatus{m.Written, m.Unchanged, m.Stale, m.Failed} {
		if n := counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}

	return strings.Join(parts, ", ")
}

// DisplayClassifications prints the helper chosen for each key.
func (s *SimpleUI) DisplayClassifications(ctx context.Context, rows []m.Classification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderClassificationTable(rows))

	return nil
}

func renderClassificationTable(rows []m.Classification) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Tag", "Key", "Modifier", "Helper", "Key Arg"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	for _, row := range rows {
		keyArg := "yes"
		if row.OmitKey {
			keyArg = "no"
		}

		table.Append([]string{row.Tag, row.Key, row.Modifier, row.Helper, keyArg})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayCode prints generated code under a title line.
func (s *SimpleUI) DisplayCode(ctx context.Context, title, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("// %s\n%s", title, code)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
