package types

// Config contains the configuration for a cleanup run.
type Config struct {
	// CloudConfig configures various attributes about the cloud provider.
	CloudConfig ProviderConfig

	// RunConfig configures the behavior of the sweep.
	RunConfig RunConfig
}

// ProviderConfig configures the regions and resources the sweep operates on.
type ProviderConfig struct {
	// Regions restricts the sweep to the given regions. When empty every
	// region enabled for the account is swept.
	Regions []string

	// DryRun reports the resources that would be deleted without issuing
	// any delete calls.
	DryRun bool

	// NoConfirm skips the interactive confirmation before deleting.
	NoConfirm bool
}

// RunConfig configures logging behavior of the sweep.
type RunConfig struct {
	// ShowDebug - display debug messages
	ShowDebug bool

	// ShowErrors - display error messages
	ShowErrors bool

	// ShowWarnings - display warning messages
	ShowWarnings bool
}
