package constant

const (
	SectorSize = 512
)

const (
	DefaultSectors    = 1 << 16 // 32MB backing file
	DefaultQueueDepth = 128     // native queue drain threshold
)

const (
	SchedulerName = "sstf"
)
