// onevision serves a normalized, cached view of a cloud inventory table.
package main

func main() {
	Execute()
}
