// Command jot manages short notes kept in a single local JSON slot.
package main

func main() {
	Execute()
}
