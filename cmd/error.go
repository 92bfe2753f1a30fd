package cmd

import (
	"fmt"
	"os"

	"github.com/ttacon/chalk"
)

func exitWithError(errs string) {
	fmt.Println(chalk.Red.Color(errs))
	os.Exit(1)
}
