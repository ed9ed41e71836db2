package cli

var (
	RunSweepForTest    = runSweep
	LoadEnvFileForTest = loadEnvFile
)
