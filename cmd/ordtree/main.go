// Command ordtree loads records into ordered trees and inspects them.
package main

import "github.com/npillmayer/ordtree/cmd/ordtree/internal/cmd"

func main() {
	cmd.Execute()
}
