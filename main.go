package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/envcrypt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
