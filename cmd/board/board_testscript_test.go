package main

import (
	"testing"

	"github.com/amonks/todoboard/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestBoardScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/board",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset": testsupport.CmdEnvSet,
			"todoid": testsupport.CmdTodoID,
		},
	})
}

func TestVersionScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/version",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
