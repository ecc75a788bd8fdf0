package session

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a position in the menu state machine.
type State int

// Menu states.
const (
	StateMenu State = iota
	StateModuleSelected
	StateCompleted
	StateExited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateModuleSelected:
		return "module-selected"
	case StateCompleted:
		return "completed"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Module identifies one algebra domain.
type Module int

// Modules in menu order.
const (
	ModuleVector Module = iota + 1
	ModuleMatrix
	ModuleSet
	ModuleLogic
	ModuleComplex
)

// Modules lists every module in menu order.
var Modules = []Module{ModuleVector, ModuleMatrix, ModuleSet, ModuleLogic, ModuleComplex}

// String returns the module name used in logs and metric labels.
func (m Module) String() string {
	switch m {
	case ModuleVector:
		return "vector"
	case ModuleMatrix:
		return "matrix"
	case ModuleSet:
		return "set"
	case ModuleLogic:
		return "logic"
	case ModuleComplex:
		return "complex"
	default:
		return fmt.Sprintf("Module(%d)", int(m))
	}
}

// Menu choices beyond the five modules.
const (
	ChoiceReturn = 6
	ChoiceExit   = 7
)

// menuText is printed on every entry to StateMenu.
const menuText = `Select your options:
1. Calculate Vector.
2. Calculate Matrix.
3. Calculate Set.
4. Calculate Boolean Logic.
5. Calculate Complex.
6. Return to the main menu.
7. Exit Program.
`

// transition applies a menu choice in StateMenu and returns the next state and,
// for module choices, the selected module. ok is false for unknown choices,
// which leave the machine in StateMenu.
func transition(choice string) (next State, m Module, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return StateMenu, 0, false
	}
	switch {
	case n >= int(ModuleVector) && n <= int(ModuleComplex):
		return StateModuleSelected, Module(n), true
	case n == ChoiceReturn:
		return StateMenu, 0, true
	case n == ChoiceExit:
		return StateExited, 0, true
	default:
		return StateMenu, 0, false
	}
}
