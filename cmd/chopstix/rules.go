package main

import (
	"fmt"

	"github.com/lox/chopstix/internal/display"
)

type RulesCmd struct{}

func (r *RulesCmd) Run(g *Globals) error {
	fmt.Println(display.Welcome)
	fmt.Println(display.Intro())
	return nil
}
