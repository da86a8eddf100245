// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes used by the lumen input
// system. The numeric values follow the USB-era desktop convention
// (printable keys use their uppercase ASCII value, function and
// navigation keys live above 255), so desktop backends can map OS key
// codes with a bounds-checked conversion instead of a lookup table.
package key

// Codes is the type for physical key codes. Input snapshot arrays are
// indexed by Codes values, which are always in [0, CodesN).
type Codes int32

// CodesN is the size of per-key snapshot arrays. Codes at or above
// this value are discarded at the ingestion boundary.
const CodesN = 512

const (
	// CodeNull is the zero value, used as the "no key" sentinel.
	CodeNull Codes = 0

	// Printable keys, ASCII-valued.
	CodeApostrophe   Codes = 39
	CodeComma        Codes = 44
	CodeMinus        Codes = 45
	CodePeriod       Codes = 46
	CodeSlash        Codes = 47
	Code0            Codes = 48
	Code1            Codes = 49
	Code2            Codes = 50
	Code3            Codes = 51
	Code4            Codes = 52
	Code5            Codes = 53
	Code6            Codes = 54
	Code7            Codes = 55
	Code8            Codes = 56
	Code9            Codes = 57
	CodeSemicolon    Codes = 59
	CodeEqual        Codes = 61
	CodeA            Codes = 65
	CodeB            Codes = 66
	CodeC            Codes = 67
	CodeD            Codes = 68
	CodeE            Codes = 69
	CodeF            Codes = 70
	CodeG            Codes = 71
	CodeH            Codes = 72
	CodeI            Codes = 73
	CodeJ            Codes = 74
	CodeK            Codes = 75
	CodeL            Codes = 76
	CodeM            Codes = 77
	CodeN            Codes = 78
	CodeO            Codes = 79
	CodeP            Codes = 80
	CodeQ            Codes = 81
	CodeR            Codes = 82
	CodeS            Codes = 83
	CodeT            Codes = 84
	CodeU            Codes = 85
	CodeV            Codes = 86
	CodeW            Codes = 87
	CodeX            Codes = 88
	CodeY            Codes = 89
	CodeZ            Codes = 90
	CodeLeftBracket  Codes = 91
	CodeBackslash    Codes = 92
	CodeRightBracket Codes = 93
	CodeGrave        Codes = 96

	// Function and navigation keys.
	CodeSpace        Codes = 32
	CodeEscape       Codes = 256
	CodeEnter        Codes = 257
	CodeTab          Codes = 258
	CodeBackspace    Codes = 259
	CodeInsert       Codes = 260
	CodeDelete       Codes = 261
	CodeRightArrow   Codes = 262
	CodeLeftArrow    Codes = 263
	CodeDownArrow    Codes = 264
	CodeUpArrow      Codes = 265
	CodePageUp       Codes = 266
	CodePageDown     Codes = 267
	CodeHome         Codes = 268
	CodeEnd          Codes = 269
	CodeCapsLock     Codes = 280
	CodeScrollLock   Codes = 281
	CodeNumLock      Codes = 282
	CodePrintScreen  Codes = 283
	CodePause        Codes = 284
	CodeF1           Codes = 290
	CodeF2           Codes = 291
	CodeF3           Codes = 292
	CodeF4           Codes = 293
	CodeF5           Codes = 294
	CodeF6           Codes = 295
	CodeF7           Codes = 296
	CodeF8           Codes = 297
	CodeF9           Codes = 298
	CodeF10          Codes = 299
	CodeF11          Codes = 300
	CodeF12          Codes = 301
	CodeLeftShift    Codes = 340
	CodeLeftControl  Codes = 341
	CodeLeftAlt      Codes = 342
	CodeLeftMeta     Codes = 343
	CodeRightShift   Codes = 344
	CodeRightControl Codes = 345
	CodeRightAlt     Codes = 346
	CodeRightMeta    Codes = 347
	CodeMenu         Codes = 348

	// Keypad keys.
	CodeKeypad0        Codes = 320
	CodeKeypad1        Codes = 321
	CodeKeypad2        Codes = 322
	CodeKeypad3        Codes = 323
	CodeKeypad4        Codes = 324
	CodeKeypad5        Codes = 325
	CodeKeypad6        Codes = 326
	CodeKeypad7        Codes = 327
	CodeKeypad8        Codes = 328
	CodeKeypad9        Codes = 329
	CodeKeypadDecimal  Codes = 330
	CodeKeypadDivide   Codes = 331
	CodeKeypadMultiply Codes = 332
	CodeKeypadSubtract Codes = 333
	CodeKeypadAdd      Codes = 334
	CodeKeypadEnter    Codes = 335
	CodeKeypadEqual    Codes = 336
)

// IsValid returns whether the code can index an input snapshot array.
func (c Codes) IsValid() bool {
	return c > CodeNull && c < CodesN
}

var names = map[Codes]string{
	CodeNull:           "Null",
	CodeApostrophe:     "Apostrophe",
	CodeComma:          "Comma",
	CodeMinus:          "Minus",
	CodePeriod:         "Period",
	CodeSlash:          "Slash",
	Code0:              "0",
	Code1:              "1",
	Code2:              "2",
	Code3:              "3",
	Code4:              "4",
	Code5:              "5",
	Code6:              "6",
	Code7:              "7",
	Code8:              "8",
	Code9:              "9",
	CodeSemicolon:      "Semicolon",
	CodeEqual:          "Equal",
	CodeA:              "A",
	CodeB:              "B",
	CodeC:              "C",
	CodeD:              "D",
	CodeE:              "E",
	CodeF:              "F",
	CodeG:              "G",
	CodeH:              "H",
	CodeI:              "I",
	CodeJ:              "J",
	CodeK:              "K",
	CodeL:              "L",
	CodeM:              "M",
	CodeN:              "N",
	CodeO:              "O",
	CodeP:              "P",
	CodeQ:              "Q",
	CodeR:              "R",
	CodeS:              "S",
	CodeT:              "T",
	CodeU:              "U",
	CodeV:              "V",
	CodeW:              "W",
	CodeX:              "X",
	CodeY:              "Y",
	CodeZ:              "Z",
	CodeLeftBracket:    "LeftBracket",
	CodeBackslash:      "Backslash",
	CodeRightBracket:   "RightBracket",
	CodeGrave:          "Grave",
	CodeSpace:          "Space",
	CodeEscape:         "Escape",
	CodeEnter:          "Enter",
	CodeTab:            "Tab",
	CodeBackspace:      "Backspace",
	CodeInsert:         "Insert",
	CodeDelete:         "Delete",
	CodeRightArrow:     "RightArrow",
	CodeLeftArrow:      "LeftArrow",
	CodeDownArrow:      "DownArrow",
	CodeUpArrow:        "UpArrow",
	CodePageUp:         "PageUp",
	CodePageDown:       "PageDown",
	CodeHome:           "Home",
	CodeEnd:            "End",
	CodeCapsLock:       "CapsLock",
	CodeScrollLock:     "ScrollLock",
	CodeNumLock:        "NumLock",
	CodePrintScreen:    "PrintScreen",
	CodePause:          "Pause",
	CodeF1:             "F1",
	CodeF2:             "F2",
	CodeF3:             "F3",
	CodeF4:             "F4",
	CodeF5:             "F5",
	CodeF6:             "F6",
	CodeF7:             "F7",
	CodeF8:             "F8",
	CodeF9:             "F9",
	CodeF10:            "F10",
	CodeF11:            "F11",
	CodeF12:            "F12",
	CodeLeftShift:      "LeftShift",
	CodeLeftControl:    "LeftControl",
	CodeLeftAlt:        "LeftAlt",
	CodeLeftMeta:       "LeftMeta",
	CodeRightShift:     "RightShift",
	CodeRightControl:   "RightControl",
	CodeRightAlt:       "RightAlt",
	CodeRightMeta:      "RightMeta",
	CodeMenu:           "Menu",
	CodeKeypad0:        "Keypad0",
	CodeKeypad1:        "Keypad1",
	CodeKeypad2:        "Keypad2",
	CodeKeypad3:        "Keypad3",
	CodeKeypad4:        "Keypad4",
	CodeKeypad5:        "Keypad5",
	CodeKeypad6:        "Keypad6",
	CodeKeypad7:        "Keypad7",
	CodeKeypad8:        "Keypad8",
	CodeKeypad9:        "Keypad9",
	CodeKeypadDecimal:  "KeypadDecimal",
	CodeKeypadDivide:   "KeypadDivide",
	CodeKeypadMultiply: "KeypadMultiply",
	CodeKeypadSubtract: "KeypadSubtract",
	CodeKeypadAdd:      "KeypadAdd",
	CodeKeypadEnter:    "KeypadEnter",
	CodeKeypadEqual:    "KeypadEqual",
}

func (c Codes) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "Unknown"
}

// CodeByName returns the code with the given name, or [CodeNull] if
// there is none.
func CodeByName(name string) Codes {
	for c, n := range names {
		if n == name {
			return c
		}
	}
	return CodeNull
}
