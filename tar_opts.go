package wpressarc

// tarConfig holds the permission and ownership attributes applied to tar
// headers produced by ToTarHeader.
type tarConfig struct {
	mode  int64
	uid   int
	gid   int
	owner string
	group string
}

func defaultTarConfig() tarConfig {
	return tarConfig{mode: 0o644}
}

// TarOption configures ToTarHeader.
type TarOption func(*tarConfig)

// WithMode sets the permission bits of produced tar headers (default 0644).
func WithMode(mode int64) TarOption {
	return func(c *tarConfig) {
		c.mode = mode
	}
}

// WithUID sets the numeric owner id of produced tar headers (default 0).
func WithUID(uid int) TarOption {
	return func(c *tarConfig) {
		c.uid = uid
	}
}

// WithGID sets the numeric group id of produced tar headers (default 0).
func WithGID(gid int) TarOption {
	return func(c *tarConfig) {
		c.gid = gid
	}
}

// WithOwner sets the owner name of produced tar headers (default empty).
func WithOwner(name string) TarOption {
	return func(c *tarConfig) {
		c.owner = name
	}
}

// WithGroup sets the group name of produced tar headers (default empty).
func WithGroup(name string) TarOption {
	return func(c *tarConfig) {
		c.group = name
	}
}
