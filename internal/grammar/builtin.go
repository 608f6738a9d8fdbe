package grammar

var _cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"int", "long", "register", "return", "short", "signed", "sizeof",
	"static", "struct", "switch", "typedef", "union", "unsigned", "void",
	"volatile", "while",
}

// C++ additions on top of C.
var _cppKeywords = []string{
	"alignas", "alignof", "and", "and_eq", "asm", "atomic_cancel",
	"atomic_commit", "atomic_noexcept", "bitand", "bitor", "bool", "catch",
	"char8_t", "char16_t", "char32_t", "class", "compl", "concept",
	"consteval", "constexpr", "constinit", "const_cast", "co_await",
	"co_return", "co_yield", "decltype", "delete", "dynamic_cast",
	"explicit", "export", "false", "friend", "inline", "mutable",
	"namespace", "new", "noexcept", "not", "not_eq", "nullptr", "operator",
	"or", "or_eq", "private", "protected", "public", "reflexpr",
	"reinterpret_cast", "requires", "static_assert", "static_cast",
	"synchronized", "template", "this", "thread_local", "throw", "true",
	"try", "typeid", "typename", "using", "virtual", "wchar_t", "xor",
	"xor_eq",
}

var _javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double", "else",
	"enum", "extends", "final", "finally", "float", "for", "goto", "if",
	"implements", "import", "instanceof", "int", "interface", "long",
	"native", "new", "package", "private", "protected", "public", "return",
	"short", "static", "strictfp", "super", "switch", "synchronized", "this",
	"throw", "throws", "transient", "try", "void", "volatile", "while",
}

var _pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

// Builtin builds a registry with the languages supported out of the box:
// C, C++, Java, and Python.
func Builtin() *Registry {
	c := &Grammar{
		Name:        "c",
		Keywords:    keywordSet(_cKeywords),
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
	}
	cpp := &Grammar{
		Name:        "cpp",
		Keywords:    keywordSet(_cKeywords, _cppKeywords),
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
	}
	java := &Grammar{
		Name:        "java",
		Keywords:    keywordSet(_javaKeywords),
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
	}
	python := &Grammar{
		Name:        "python",
		Keywords:    keywordSet(_pythonKeywords),
		LineComment: "#",
	}

	return New(map[string]*Grammar{
		".c":    c,
		".h":    c,
		".cpp":  cpp,
		".cxx":  cpp,
		".cc":   cpp,
		".java": java,
		".py":   python,
		".pyw":  python,
	})
}
