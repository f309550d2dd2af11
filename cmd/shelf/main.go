// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command shelf browses a media catalog from the terminal.
//
// It reads the embedded seed catalog (or a YAML file given with --catalog),
// renders listings with half-star ratings, and can query the remote metadata
// service.
//
//	shelf list --type books --sort rating --dir desc
//	shelf list --tag Crime --tag Drama --year 2000-2010 --min-rating 4
//	shelf stars 3.5
//	shelf search movies "blade runner" --remote http://localhost:8000/api
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
