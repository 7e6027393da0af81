// Command diffbot calls the Diffbot content-extraction API from the shell.
package main

import "github.com/tsingmao/diffbot/cmd/diffbot/app"

func main() {
	app.Execute()
}
