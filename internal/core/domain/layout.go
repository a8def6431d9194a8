package domain

const (
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for constraints files (rw-r--r--).
	// Constraints files are shared, versioned text artifacts.
	FilePerm = 0o644
)
