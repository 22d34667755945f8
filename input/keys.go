package input

import (
	"fmt"
	"strings"
)

// KeyCode is a browser keyboard key code (KeyboardEvent.keyCode).
type KeyCode int

const (
	KeyEnter  KeyCode = 13
	KeyEscape KeyCode = 27
	KeySpace  KeyCode = 32
	KeyLeft   KeyCode = 37
	KeyUp     KeyCode = 38
	KeyRight  KeyCode = 39
	KeyDown   KeyCode = 40

	KeyA KeyCode = 65
	KeyR KeyCode = 82
	KeyZ KeyCode = 90
)

var keyNames = map[KeyCode]string{
	KeyEnter:  "Enter",
	KeyEscape: "Escape",
	KeySpace:  " ",
	KeyLeft:   "ArrowLeft",
	KeyUp:     "ArrowUp",
	KeyRight:  "ArrowRight",
	KeyDown:   "ArrowDown",
}

// aliases are the upper-case action names accepted besides DOM key names.
var aliases = map[string]KeyCode{
	"ENTER":  KeyEnter,
	"ESC":    KeyEscape,
	"ESCAPE": KeyEscape,
	"SPACE":  KeySpace,
	"LEFT":   KeyLeft,
	"UP":     KeyUp,
	"RIGHT":  KeyRight,
	"DOWN":   KeyDown,
}

// IsLetter reports whether the code is one of A..Z.
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// String returns the DOM key name ("ArrowUp", " ", "r"), or the number for
// codes without a name.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsLetter() {
		return string(rune('a' + (k - KeyA)))
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// ParseKeyName maps a DOM key name or an action name ("UP", "ESC", "R") to its code.
func ParseKeyName(name string) (KeyCode, bool) {
	for code, keyName := range keyNames {
		if keyName == name {
			return code, true
		}
	}
	if code, ok := aliases[strings.ToUpper(name)]; ok {
		return code, true
	}
	if len(name) == 1 {
		letter := strings.ToUpper(name)[0]
		if letter >= 'A' && letter <= 'Z' {
			return KeyA + KeyCode(letter-'A'), true
		}
	}
	return 0, false
}
