package main

type compilerKind string

const (
	kindMSVC  compilerKind = "msvc"
	kindGCC   compilerKind = "gcc"
	kindClang compilerKind = "clang"
	kindIntel compilerKind = "intel"
)

// compilerSpec describes how one compiler family is probed on a given
// platform family.
type compilerSpec struct {
	Name string
	// Command is the executable looked up on PATH and later invoked.
	Command string
	// AlsoRequires lists extra executables that must resolve for the
	// toolchain to count as present (MinGW wants both gcc and g++).
	AlsoRequires []string
	// VersionArgs are passed to Command to obtain a version banner.
	// Empty for MSVC, whose banner appears on stderr with no input.
	VersionArgs     []string
	VersionOnStderr bool
	Priority        int
}

// compilerSpecs maps platform family -> kind -> probe spec. Priorities are
// platform dependent: MSVC ranks first on Windows, Clang outranks GCC on
// Unix systems.
var compilerSpecs = map[string]map[compilerKind]compilerSpec{
	"windows": {
		kindMSVC: {
			Name:            "Visual Studio C++",
			Command:         "cl",
			VersionOnStderr: true,
			Priority:        1,
		},
		kindGCC: {
			Name:         "MinGW/GCC",
			Command:      "g++",
			AlsoRequires: []string{"gcc"},
			VersionArgs:  []string{"--version"},
			Priority:     2,
		},
		kindClang: {
			Name:        "Clang",
			Command:     "clang++",
			VersionArgs: []string{"--version"},
			Priority:    2,
		},
	},
	"unix": {
		kindGCC: {
			Name:        "GCC",
			Command:     "g++",
			VersionArgs: []string{"--version"},
			Priority:    2,
		},
		kindClang: {
			Name:        "Clang",
			Command:     "clang++",
			VersionArgs: []string{"--version"},
			Priority:    1,
		},
		kindIntel: {
			Name:        "Intel C++ Compiler",
			Command:     "icpc",
			VersionArgs: []string{"--version"},
			Priority:    1,
		},
	},
}

// probeOrder fixes which kinds are probed per platform family and in what
// order. The final attempt order is decided by priority in the build loop,
// not here.
var probeOrder = map[string][]compilerKind{
	"windows": {kindMSVC, kindGCC, kindClang},
	"unix":    {kindGCC, kindClang, kindIntel},
}

// vsInstallPaths are well-known Visual Studio environment setup scripts,
// checked in order; the first existing one wins. Overridable in tests.
var vsInstallPaths = []string{
	`C:\Program Files\Microsoft Visual Studio\2022\Community\VC\Auxiliary\Build\vcvars64.bat`,
	`C:\Program Files\Microsoft Visual Studio\2022\Professional\VC\Auxiliary\Build\vcvars64.bat`,
	`C:\Program Files\Microsoft Visual Studio\2022\Enterprise\VC\Auxiliary\Build\vcvars64.bat`,
	`C:\Program Files (x86)\Microsoft Visual Studio\2019\Community\VC\Auxiliary\Build\vcvars64.bat`,
}

const vsInstallVersion = "2022"

// linkLibraries maps operating system -> kind -> link arguments appended to
// the compile command. GCC on darwin intentionally gets nothing: native
// macOS builds go through Clang, which carries the framework references.
var linkLibraries = map[string]map[compilerKind][]string{
	"windows": {
		kindMSVC:  {"kernel32.lib", "user32.lib", "gdi32.lib", "opengl32.lib"},
		kindGCC:   {"-lkernel32", "-luser32", "-lgdi32", "-lopengl32"},
		kindClang: {"-lkernel32", "-luser32", "-lgdi32", "-lopengl32"},
	},
	"linux": {
		kindGCC:   {"-lm", "-lpthread"},
		kindClang: {"-lm", "-lpthread"},
	},
	"darwin": {
		kindClang: {"-framework", "OpenGL", "-framework", "Cocoa"},
	},
}

// sourceFiles is the fixed compilation unit set of the font compiler.
// Only the first entry is passed to the compiler; the rest are declared
// dependencies pulled in through includes.
var sourceFiles = []string{
	"tools/font_compiler_main.cpp",
	"integration/rf_font_api.cpp",
	"integration/rf_blood_api.cpp",
	"integration/rf_integration.cpp",
	"src/core/rf_font.c",
	"src/core/rf_font_cache.cpp",
	"src/core/rf_character_map.cpp",
}

var includeDirs = []string{"include", "integration"}

// installGuidance is shown when no compiler is discoverable.
var installGuidance = map[string][]string{
	"windows": {
		"Visual Studio (https://visualstudio.microsoft.com)",
		"MinGW-w64 (https://www.mingw-w64.org)",
		"Clang for Windows (https://releases.llvm.org)",
	},
	"unix": {
		"GCC (sudo apt-get install build-essential)",
		"Clang (sudo apt-get install clang)",
	},
}

// platformFamily folds concrete operating systems into the two families the
// configuration tables are keyed by.
func platformFamily(system string) string {
	if system == "windows" {
		return "windows"
	}
	return "unix"
}
