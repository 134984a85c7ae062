package envvar

const (
	// TensorbridgeEnv is the environment variable used to determine the environment
	TensorbridgeEnv = "TENSORBRIDGE_ENV"

	// TensorbridgeArtifactsPath is the environment variable used to override the artifact cache directory
	TensorbridgeArtifactsPath = "TENSORBRIDGE_ARTIFACTS_PATH"
)
