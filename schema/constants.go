package schema

// Custom string types for type safety.
type (
	// ItemKind represents the scoring variant of an assessment item.
	ItemKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// ClusterStrategy represents how career clusters are scored.
	ClusterStrategy string

	// Channel represents a learning-style channel.
	Channel string

	// Severity represents how serious an integrity issue is.
	Severity string
)

// All item kinds supported. The kind is resolved once when the bank is
// built, so the aggregation loop never inspects raw type tags.
const (
	ObjectiveKind ItemKind = "objective"
	LikertKind    ItemKind = "likert" // default when no type tag is present
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cluster scoring strategies supported.
const (
	ItemStrategy   ClusterStrategy = "items" // score straight from the answer set
	DomainStrategy ClusterStrategy = "domains"
)

// All learning-style channels supported.
const (
	VisualChannel      Channel = "visual"
	AuditoryChannel    Channel = "auditory"
	KinestheticChannel Channel = "kinesthetic"
)

// ChannelOrder is the canonical enumeration order. Ties between channel
// means resolve to the earliest channel in this order.
var ChannelOrder = []Channel{VisualChannel, AuditoryChannel, KinestheticChannel}

// All integrity issue severities supported.
const (
	ErrorSeverity   Severity = "error"
	WarningSeverity Severity = "warning"
)

// Likert scale bounds. Reverse-scored items map a raw answer v to
// LikertMin+LikertMax-v.
const (
	LikertMin = 1.0
	LikertMax = 5.0

	// LikertHighBand is the lowest effective value counted as a
	// high-scoring response in aggregate counters.
	LikertHighBand = 4.0
)
