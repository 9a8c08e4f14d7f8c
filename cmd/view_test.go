package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vapor.dev/pkg/vapor/internal/domain"
	domainmocks "vapor.dev/pkg/vapor/internal/domain/mocks"
	m "vapor.dev/pkg/vapor/internal/model"
)

func TestViewCmd_PassesPathAndRuntimeModule(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Path == m.Path("pages/home.vapor.yaml") && args.RuntimeModule == "rt"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"view", "pages/home.vapor.yaml", "--runtime-module", "rt"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresOneFile(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(t, newViewCmd())

	cmd.SetArgs([]string{"view"})
	require.Error(t, cmd.Execute())

	cmd.SetArgs([]string{"view", "a.vapor.yaml", "b.vapor.yaml"})
	require.Error(t, cmd.Execute())
}
