package main

import (
	"fmt"
)

func main() {
	defer withRecovery()
	wallet := NewWalletService()
	wallet.Start()
}

func withRecovery() {
	if r := recover(); r != nil {
		fmt.Println("Recovered panic: ", r)
	}
}
