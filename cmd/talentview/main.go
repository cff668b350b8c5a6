// main is the entry point for the talentview CLI.
package main

import (
	"os"

	"github.com/huangsam/talentview/cmd"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseStores() // os.Exit skips deferred calls
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
