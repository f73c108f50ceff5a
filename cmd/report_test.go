package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"incov.dev/pkg/incov/internal/domain"
	domainmocks "incov.dev/pkg/incov/internal/domain/mocks"
	m "incov.dev/pkg/incov/internal/model"
)

func newTestReportCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(append([]string{"report"}, args...))
		return cmd.Execute()
	}
}

func TestReportCmd_Commit(t *testing.T) {
	mockWorkflow, run := newTestReportCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Commit == "abc1234" &&
			args.Branch == "" &&
			assert.ObjectsAreEqual([]m.Path{"target/classes", "core/target/classes"}, args.ClassFiles) &&
			assert.ObjectsAreEqual([]m.Path{"src/main/java"}, args.SourceFiles) &&
			assert.ObjectsAreEqual([]m.Path{"a.exec", "b.exec"}, args.ExecFiles) &&
			len(args.AnalyzerArgs) == 0
	})).Return(nil)

	err := run(
		"--commit", "abc1234",
		"--classfiles", "target/classes",
		"--classfiles", "core/target/classes",
		"--sourcefiles", "src/main/java",
		"a.exec", "b.exec",
	)
	require.NoError(t, err)
}

func TestReportCmd_BranchAndAnalyzerArgs(t *testing.T) {
	mockWorkflow, run := newTestReportCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Commit == "" &&
			args.Branch == "main" &&
			assert.ObjectsAreEqual([]m.Path{"jacoco.exec"}, args.ExecFiles) &&
			assert.ObjectsAreEqual([]string{"--html", "out"}, args.AnalyzerArgs)
	})).Return(nil)

	err := run("-b", "main", "jacoco.exec", "--", "--html", "out")
	require.NoError(t, err)
}

func TestReportCmd_NoBase(t *testing.T) {
	mockWorkflow, run := newTestReportCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Commit == "" && args.Branch == "" && len(args.ExecFiles) == 0
	})).Return(nil)

	require.NoError(t, run())
}

func TestReportCmd_WorkflowError(t *testing.T) {
	mockWorkflow, run := newTestReportCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.Anything).
		Return(m.NewGitError(m.KindBranchNotFound, "branch not found: nope", nil))

	err := run("--branch", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrBranchNotFound))
}

func TestReportCmd_ConfigBoundFlags(t *testing.T) {
	mockWorkflow, run := newTestReportCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Analyzer == "java -jar jacococli.jar report" &&
			args.Manifest == m.Path("out/incov.manifest.yaml") &&
			args.WarnLimit == 2 &&
			args.Repository == m.Path("../service")
	})).Return(nil)

	err := run(
		"--commit", "HEAD~3",
		"--analyzer", "java -jar jacococli.jar report",
		"--manifest", "out/incov.manifest.yaml",
		"--warn-limit", "2",
		"--repo", "../service",
	)
	require.NoError(t, err)
}
