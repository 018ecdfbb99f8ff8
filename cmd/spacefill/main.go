package main

import spacefill "github.com/spacefill/spacefill/internal"

func main() {
	spacefill.Cmd()
}
