package main

import (
	"os"

	"github.com/SscSPs/erp_ledger/internal/ledgerctl"
)

func main() {
	if err := ledgerctl.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
