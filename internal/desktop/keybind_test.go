package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Command
		wantErr bool
	}{
		{name: "exec with argv", input: "exec foot -e tmux", want: Command{Verb: CommandExec, Arg: "foot -e tmux"}},
		{name: "exit", input: "exit", want: Command{Verb: CommandExit}},
		{name: "kill", input: "kill", want: Command{Verb: CommandKill}},
		{name: "exec with no argument", input: "exec", wantErr: true},
		{name: "unknown verb", input: "frobnicate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeybindTableMatchIsFirstMatchWins(t *testing.T) {
	table := NewKeybindTable([]Keybind{
		{Keysym: 1, ModMask: 1, Command: Command{Verb: CommandExit}},
		{Keysym: 1, ModMask: 1, Command: Command{Verb: CommandKill}},
	})

	bind, ok := table.Match(1, 1)
	require.True(t, ok)
	assert.Equal(t, CommandExit, bind.Command.Verb)

	_, ok = table.Match(2, 1)
	assert.False(t, ok)
}
