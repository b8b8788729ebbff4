package core

// ChannelStats reports receive-side loss on the command channel: bytes
// dropped by a full input FIFO and oversized lines discarded by the line
// scanner.
type ChannelStats func() (droppedBytes, droppedLines uint32)

var channelStats ChannelStats

// SetChannelStats registers the counter source for status reporting.
// Builds without a serial channel leave it unset and report zeros.
func SetChannelStats(fn ChannelStats) {
	channelStats = fn
}

func readChannelStats() (uint32, uint32) {
	if channelStats == nil {
		return 0, 0
	}
	return channelStats()
}
