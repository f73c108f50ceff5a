package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"incov.dev/pkg/incov/internal/domain"
	domainmocks "incov.dev/pkg/incov/internal/domain/mocks"
	m "incov.dev/pkg/incov/internal/model"
)

func TestMapCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.MapArgs
	}{
		{
			name: "explicit roots",
			args: []string{"map", "--classfiles", "target/classes", "src/main/java/com/example/A.java"},
			want: domain.MapArgs{
				Roots:   []m.Path{"target/classes"},
				Sources: []string{"src/main/java/com/example/A.java"},
			},
		},
		{
			name: "current directory by default",
			args: []string{"map", "src/main/java/com/example/A.java", "src/test/java/com/example/ATest.java"},
			want: domain.MapArgs{
				Roots:   []m.Path{"."},
				Sources: []string{"src/main/java/com/example/A.java", "src/test/java/com/example/ATest.java"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd := newRootCmd()
			cmd.AddCommand(newMapCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			mockWorkflow.EXPECT().Map(mock.Anything, tt.want).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestMapCmd_RequiresSources(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newMapCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"map"})
	require.Error(t, cmd.Execute())
}
