//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	BotPasses     int // 0 disables the traffic bot
	CheckinsFile  string
	EdgesFile     string
	EnquiriesFile string
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip          bool
	HostIP        string
	HostPort      int
	LdaGraph      bool
	LdaMaxTopics  int
	LogLevel      int
	ManualGC      bool // see messenger.LogPaths()
	PGLogin       PostgresLogin
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	SelfTest      int
	SQLiteFile    string
	TickerActive  bool
	VectorChtHt   string
	VectorChtWd   string
	VectorModel   string
	VectorNeighb  int
	VectorWebExt  bool // "simple" when false; "expanded" when true
	WorkerCount   int
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}
