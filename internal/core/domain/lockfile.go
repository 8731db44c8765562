package domain

// LockfileVersion is the current lockfile schema version.
const LockfileVersion = 1

// Environment is the fully pinned package set for one target platform.
type Environment struct {
	Platform Platform
	Channel  LockedChannelPackages
	Dist     LockedDistPackages
}

// Lockfile represents the complete state of resolved packages across all
// target platforms. It is a reproducible snapshot: resolving the same manifest
// against the same index yields an identical lockfile.
type Lockfile struct {
	// Version is the lockfile format version, allowing future schema
	// migrations and backward compatibility.
	Version int

	// Environments holds one resolved environment per target platform, in
	// manifest declaration order.
	Environments []Environment
}

// Environment returns the resolved environment for the given platform.
func (l *Lockfile) Environment(platform Platform) (Environment, bool) {
	for _, env := range l.Environments {
		if env.Platform == platform {
			return env, true
		}
	}
	return Environment{}, false
}
