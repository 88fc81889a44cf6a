// Command contacts manages mobile contact records that stay unique by id
// and phone number.
package main

import "github.com/mesh-intelligence/contacts/internal/cli"

func main() {
	cli.Execute()
}
