// Command gridmdp inspects grid world MDPs and runs experiments on them
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
