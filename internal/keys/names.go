package keys

import "fmt"

type namedCode struct {
	name string
	code Code
}

// enumNames lists the single-byte members of the Windows virtual-key
// enumeration. The first name given for a code is its canonical name.
var enumNames = buildEnumNames()

func buildEnumNames() []namedCode {
	names := []namedCode{
		{"LButton", 0x01}, {"RButton", 0x02}, {"Cancel", 0x03}, {"MButton", 0x04},
		{"XButton1", 0x05}, {"XButton2", 0x06},
		{"Back", Back}, {"Tab", Tab}, {"LineFeed", 0x0a}, {"Clear", 0x0c},
		{"Enter", Enter}, {"Return", Enter},
		{"ShiftKey", ShiftKey}, {"ControlKey", ControlKey}, {"Menu", Menu},
		{"Pause", 0x13}, {"CapsLock", 0x14}, {"Capital", 0x14},
		{"KanaMode", 0x15}, {"HangulMode", 0x15}, {"HanguelMode", 0x15},
		{"JunjaMode", 0x17}, {"FinalMode", 0x18}, {"HanjaMode", 0x19}, {"KanjiMode", 0x19},
		{"Escape", Escape},
		{"IMEConvert", 0x1c}, {"IMENonconvert", 0x1d}, {"IMEAccept", 0x1e}, {"IMEAceept", 0x1e},
		{"IMEModeChange", 0x1f},
		{"Space", Space}, {"PageUp", PageUp}, {"Prior", PageUp}, {"PageDown", PageDown}, {"Next", PageDown},
		{"End", End}, {"Home", Home}, {"Left", Left}, {"Up", Up}, {"Right", Right}, {"Down", Down},
		{"Select", 0x29}, {"Print", 0x2a}, {"Execute", 0x2b}, {"PrintScreen", 0x2c}, {"Snapshot", 0x2c},
		{"Insert", Insert}, {"Delete", Delete}, {"Help", 0x2f},
		{"LWin", 0x5b}, {"RWin", 0x5c}, {"Apps", 0x5d}, {"Sleep", 0x5f},
		{"Multiply", 0x6a}, {"Add", 0x6b}, {"Separator", 0x6c}, {"Subtract", 0x6d},
		{"Decimal", 0x6e}, {"Divide", 0x6f},
		{"NumLock", 0x90}, {"Scroll", 0x91},
		{"LShiftKey", LShiftKey}, {"RShiftKey", RShiftKey},
		{"LControlKey", LControlKey}, {"RControlKey", RControlKey},
		{"LMenu", LMenu}, {"RMenu", RMenu},
		{"BrowserBack", 0xa6}, {"BrowserForward", 0xa7}, {"BrowserRefresh", 0xa8},
		{"BrowserStop", 0xa9}, {"BrowserSearch", 0xaa}, {"BrowserFavorites", 0xab},
		{"BrowserHome", 0xac},
		{"VolumeMute", 0xad}, {"VolumeDown", 0xae}, {"VolumeUp", 0xaf},
		{"MediaNextTrack", 0xb0}, {"MediaPreviousTrack", 0xb1}, {"MediaStop", 0xb2},
		{"MediaPlayPause", 0xb3},
		{"LaunchMail", 0xb4}, {"SelectMedia", 0xb5},
		{"LaunchApplication1", 0xb6}, {"LaunchApplication2", 0xb7},
		{"OemSemicolon", 0xba}, {"Oem1", 0xba},
		{"Oemplus", 0xbb}, {"Oemcomma", Oemcomma}, {"OemMinus", 0xbd}, {"OemPeriod", OemPeriod},
		{"OemQuestion", 0xbf}, {"Oem2", 0xbf},
		{"Oemtilde", Oemtilde}, {"Oem3", Oemtilde},
		{"OemOpenBrackets", 0xdb}, {"Oem4", 0xdb},
		{"OemPipe", 0xdc}, {"Oem5", 0xdc},
		{"OemCloseBrackets", 0xdd}, {"Oem6", 0xdd},
		{"OemQuotes", 0xde}, {"Oem7", 0xde},
		{"Oem8", 0xdf}, {"OemBackslash", 0xe2}, {"Oem102", 0xe2},
		{"ProcessKey", 0xe5}, {"Packet", 0xe7},
		{"Attn", 0xf6}, {"Crsel", 0xf7}, {"Exsel", 0xf8}, {"EraseEof", 0xf9},
		{"Play", 0xfa}, {"Zoom", 0xfb}, {"NoName", 0xfc}, {"Pa1", 0xfd}, {"OemClear", 0xfe},
	}

	for i := 0; i <= 9; i++ {
		names = append(names,
			namedCode{fmt.Sprintf("D%d", i), D0 + Code(i)},
			namedCode{fmt.Sprintf("NumPad%d", i), 0x60 + Code(i)},
		)
	}
	for r := 'A'; r <= 'Z'; r++ {
		names = append(names, namedCode{string(r), A + Code(r-'A')})
	}
	for i := 1; i <= 24; i++ {
		names = append(names, namedCode{fmt.Sprintf("F%d", i), 0x6f + Code(i)})
	}
	return names
}

var (
	nameCodes = make(map[string]Code, len(enumNames))
	codeNames = make(map[Code]string, len(enumNames))
)

func init() {
	for _, n := range enumNames {
		nameCodes[n.name] = n.code
		if _, ok := codeNames[n.code]; !ok {
			codeNames[n.code] = n.name
		}
	}
}

// Lookup returns the key whose enumeration name is exactly name.
func Lookup(name string) (Code, bool) {
	c, ok := nameCodes[name]
	return c, ok
}

// Names returns every enumeration name in declaration order.
func Names() []string {
	out := make([]string, len(enumNames))
	for i, n := range enumNames {
		out[i] = n.name
	}
	return out
}
