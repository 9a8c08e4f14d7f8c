package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vapor.dev/pkg/vapor/internal/domain"
	domainmocks "vapor.dev/pkg/vapor/internal/domain/mocks"
)

func TestClassifyCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newClassifyCmd())

	mockWorkflow.On("Classify", mock.Anything, domain.ClassifyArgs{
		Tag:  "input",
		Keys: []string{"value", ".indeterminate", "^form"},
	}).Return(nil).Once()

	cmd.SetArgs([]string{"classify", "input", "value", ".indeterminate", "^form"})
	require.NoError(t, cmd.Execute())
}

func TestClassifyCmd_RequiresTagAndKey(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(t, newClassifyCmd())

	cmd.SetArgs([]string{"classify", "div"})
	require.Error(t, cmd.Execute())
}
