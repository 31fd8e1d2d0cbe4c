package wand

// Severity represents a MagickWand ExceptionType code. Warnings occupy
// 300-399, errors 400-699 and fatal errors 700 and above; zero means no
// exception is pending.
type Severity int

// Severity base codes as defined by the MagickCore ExceptionType enum
const (
	SeverityUndefined Severity = 0
	severityWarning   Severity = 300
	severityError     Severity = 400
	severityFatal     Severity = 700
)

// severityDomains maps the warning base code of each exception domain to
// its name. Error and fatal codes share the domain of warning+100 and
// warning+400 respectively.
var severityDomains = map[Severity]string{
	300: "resource limit",
	305: "type",
	310: "option",
	315: "delegate",
	320: "missing delegate",
	325: "corrupt image",
	330: "file open",
	335: "blob",
	340: "stream",
	345: "cache",
	350: "coder",
	352: "filter",
	355: "module",
	360: "draw",
	365: "image",
	370: "wand",
	375: "random",
	380: "xserver",
	385: "monitor",
	390: "registry",
	395: "configure",
	399: "policy",
}

// IsWarning returns true for warning severities
func (s Severity) IsWarning() bool {
	return s >= severityWarning && s < severityError
}

// IsError returns true for error and fatal severities
func (s Severity) IsError() bool {
	return s >= severityError
}

// IsFatal returns true for fatal severities
func (s Severity) IsFatal() bool {
	return s >= severityFatal
}

// Domain returns the exception domain name for the severity code
func (s Severity) Domain() string {
	base := s
	if s.IsFatal() {
		base = s - 400
	} else if s.IsError() {
		base = s - 100
	}
	if name, ok := severityDomains[base]; ok {
		return name
	}
	return "unknown"
}
