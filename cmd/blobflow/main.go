package main

import (
	"github.com/thirdweb-dev/blobflow/cmd"
)

func main() {
	cmd.Execute()
}
