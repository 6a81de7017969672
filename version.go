package evmgr

// version is the kernel's release version, the Go analogue of the source
// kernel's EM_VERSION_STRING.
const version = "1.0.0"

// Version reports the package's kernel version.
func Version() string { return version }
