package locate

import "regexp"

// darwinPattern matches the tkinter extension module by name
var darwinPattern = regexp.MustCompile(`^_tkinter$`)

// System framework roots. They are returned as-is without probing.
const (
	DarwinTclFramework = "/System/Library/Frameworks/Tcl.framework/Versions/Current"
	DarwinTkFramework  = "/System/Library/Frameworks/Tk.framework/Versions/Current"
)

func (l *Locator) resolveDarwin(_ LibraryRecord, _ []string) (*LocatedPair, bool) {
	return &LocatedPair{
		InterpreterRoot: DarwinTclFramework,
		ToolkitRoot:     DarwinTkFramework,
	}, true
}
