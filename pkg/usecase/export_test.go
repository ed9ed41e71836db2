package usecase

// Export unexported functions for testing
var (
	FindArchivesForTest  = findArchives
	PathExistsForTest    = pathExists
	ReaderWithCtxForTest = readerWithCtx
)
