//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "EnquiryAnalysisServer"
	SHORTNAME = "EAS"
	VERSION   = "1.4.2"

	CONFIGLOCATION     = "."
	CONFIGALTAPTH      = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC        = "eas-conf.json"
	CONFIGPROLIX       = "eas-prolix-conf.json"
	CONFIGJARGON       = "eas-jargon.json"
	CONFIGKEEP         = "eas-keepwords.json"
	CONFIGSTOPS        = "eas-stopwords.json"
	CONFIGPGLOGIN      = "eas-pglogin.json"
	CONFIGVECTORW2V    = "eas-vector-conf-w2v.json"
	CONFIGVECTORLEXVEC = "eas-vector-conf-lexvec.json"
	CONFIGVECTORGLOVE  = "eas-vector-conf-glove.json"

	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTPSQLHOST     = "127.0.0.1"
	DEFAULTPSQLUSER     = "eas_rd"
	DEFAULTPSQLPORT     = 5432
	DEFAULTPSQLDB       = "enquiryDB"
	DEFAULTSQLITEFILE   = "eas-data.db"
	DEFAULTVECTORMODEL  = "w2v"

	SERVEDFROMHOST = "127.0.0.1"
	SERVEDFROMPORT = 8000

	MAXECHOREQPERSECONDPERIP = 60
	MAXINPUTLEN              = 24576 // summariser and classifier forms accept whole documents
	MAXTRAINJOBS             = 2     // lda and classifier jobs are heavy; cap the simultaneous runs

	BADCHARS   = `"'<>&|{}[]\` // never let these reach a route parameter
	JSONINDENT = "  "
	WRITEPERMS = 0644

	TICKERISACTIVE = false
	TICKERDELAY    = 30 * time.Second
	TIMEOUTRD      = 15 * time.Second
	TIMEOUTWR      = 300 * time.Second // model selection loops are slow; be generous
	USEGZIP        = false

	WSPOLLINGPAUSE = 10000000 * 10 // 10000000 * 10 = every .1s

	// text normalisation

	MINWORDLENTOFIX  = 4   // tokens shorter than this are never spell-corrected
	MAXEDITDISTANCE  = 3   // a correction farther away than this is no correction at all
	MINPERCLASS      = 5   // classifier labels with fewer examples than this get dropped
	TESTFRACTION     = 0.3 // classifier train/test split
	SPLITSEED        = 271828
	EMPTYCELLFILL    = "not_provided"
	COMMODITYCODELEN = 10

	// summariser bounds

	SUMLOWERFRACT = 0.10
	SUMUPPERFRACT = 0.80

	// traffic bot

	BOTSTARTDELAY = 2 * time.Second
	BOTMINWAITMS  = 250
	BOTMAXWAITMS  = 2750
	BOTTHROTTLE   = 4 * time.Millisecond
	BOTREPORTEVRY = 25
)
