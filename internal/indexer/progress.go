package indexer

// ProgressReporter provides callbacks for reporting scan progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnDiscoveryStart is called when directory discovery begins.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called when discovery finishes.
	OnDiscoveryComplete(folders, files int)

	// OnFileProcessingStart is called before supported files are parsed.
	OnFileProcessingStart(totalFiles int)

	// OnFileProcessed is called after each file is parsed, successfully or not.
	OnFileProcessed(fileName string)

	// OnComplete is called when the scan completes.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                      {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(folders, files int) {}
func (n *NoOpProgressReporter) OnFileProcessingStart(totalFiles int)   {}
func (n *NoOpProgressReporter) OnFileProcessed(fileName string)        {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)                {}
