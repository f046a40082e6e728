package main

import "github.com/blockblockers/Deadblock-sub004/cmd"

func main() {
	cmd.Execute()
}
