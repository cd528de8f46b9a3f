package term

import "unicode/utf8"

// Key identifies a special key. Printable input uses KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyCtrlC
)

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// escapeSequences maps CSI and SS3 sequences (without the leading ESC) to keys.
var escapeSequences = map[string]Key{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"OA":  KeyUp,
	"OB":  KeyDown,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"[1~": KeyHome,
	"[4~": KeyEnd,
}

// ParseKeys decodes raw terminal input. Unknown escape sequences are
// dropped; a lone ESC is reported as KeyEscape.
func ParseKeys(data []byte) []KeyEvent {
	var events []KeyEvent
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			n, key, ok := parseEscape(data[i+1:])
			if !ok {
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
			if key != KeyRune {
				events = append(events, KeyEvent{Key: key})
			}
			i += 1 + n
		case b == 0x03:
			events = append(events, KeyEvent{Key: KeyCtrlC})
			i++
		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: KeyEnter})
			i++
		case b < 0x20 || b == 0x7f:
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			events = append(events, KeyEvent{Key: KeyRune, Rune: r})
			i += size
		}
	}
	return events
}

// parseEscape matches the bytes after ESC. It returns the sequence length,
// the key (KeyRune for an unknown but complete sequence) and whether a
// sequence started at all.
func parseEscape(rest []byte) (int, Key, bool) {
	if len(rest) == 0 || (rest[0] != '[' && rest[0] != 'O') {
		return 0, KeyRune, false
	}
	for n := 2; n <= len(rest) && n <= 4; n++ {
		if key, ok := escapeSequences[string(rest[:n])]; ok {
			return n, key, true
		}
	}
	// Skip an unknown CSI sequence up to its final byte.
	for n := 1; n < len(rest); n++ {
		if rest[n] >= 0x40 && rest[n] <= 0x7e {
			return n + 1, KeyRune, true
		}
	}
	return len(rest), KeyRune, true
}
