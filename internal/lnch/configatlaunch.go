//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/str"
	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// LookForConfigFile - test to see if we can find a config file; if not, seed the config directory
func LookForConfigFile() {
	_, a := os.Stat(vv.CONFIGBASIC)

	var b error
	var c error

	h, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		b = errors.New("cannot find UserHomeDir")
		c = errors.New("cannot find UserHomeDir")
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
		_, c = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGPROLIX)
	}

	notfound := (a != nil) && (b != nil) && (c != nil)

	if notfound {
		WriteMinimalConfig(h)
	}
}

// WriteMinimalConfig - seed "~/.config/EnquiryAnalysisServer/" with a skeleton configuration
func WriteMinimalConfig(h string) {
	const (
		FYI  = `Writing a skeleton configuration to '%s'.`
		FAIL = `WriteMinimalConfig() could not write '%s'`
	)
	d := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	if e := os.MkdirAll(d, os.FileMode(0700)); e != nil {
		Msg.EC(e)
	}

	fn := d + vv.CONFIGBASIC
	Msg.CRIT(fmt.Sprintf(FYI, fn))
	if e := os.WriteFile(fn, []byte(vv.MINCONFIG), vv.WRITEPERMS); e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL, fn))
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else if e == nil {
		Msg.CRIT(fmt.Sprintf(FAIL3, prolixcfg))
	}

	if err := applyflags(os.Args[1:]); err != nil {
		Msg.MAND(err.Error())
		printhelp(1)
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	if Config.LdaMaxTopics < vv.LDAMINTOPICS+1 {
		Config.LdaMaxTopics = vv.LDAMAXCANDIDATE
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
}

// applyflags - walk the command line and write the flags into Config; a bad flag is an error, not a shrug
func applyflags(args []string) error {
	const (
		FAIL1 = "could not parse your information as a valid collection of credentials; use the following template: " +
			`"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"enquiryDB\" ,\"User\": \"eas_rd\"}"`
		NOVAL  = "the '%s' flag requires a value"
		NOTNUM = "the '%s' flag requires a number; got '%s'"
		UNK    = "unknown command line argument: '%s'"
	)

	value := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(NOVAL, args[i])
		}
		return args[i+1], nil
	}

	number := func(i int) (int, error) {
		v, e := value(i)
		if e != nil {
			return 0, e
		}
		n, e := strconv.Atoi(v)
		if e != nil {
			return 0, fmt.Errorf(NOTNUM, args[i], v)
		}
		return n, nil
	}

	skipnext := false
	for i, a := range args {
		if skipnext {
			skipnext = false
			continue
		}

		var e error
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bt":
			Config.BotPasses, e = number(i)
			skipnext = true
		case "-bw":
			Config.BlackAndWhite = true
		case "-db":
			Config.SQLiteFile, e = value(i)
			skipnext = true
		case "-el":
			Config.EchoLog, e = number(i)
			skipnext = true
		case "-gl":
			Config.LogLevel, e = number(i)
			skipnext = true
		case "-gz":
			Config.Gzip = true
		case "-h":
			printhelp(0)
		case "-kt":
			Config.LdaMaxTopics, e = number(i)
			skipnext = true
		case "-md":
			Config.VectorModel, e = value(i)
			skipnext = true
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js, ee := value(i)
			if ee != nil {
				return ee
			}
			var pl str.PostgresLogin
			if ee = json.Unmarshal([]byte(js), &pl); ee != nil {
				return errors.New(FAIL1)
			}
			Config.PGLogin = pl
			skipnext = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP, e = value(i)
			skipnext = true
		case "-sp":
			Config.HostPort, e = number(i)
			skipnext = true
		case "-st":
			Config.SelfTest += 1
		case "-tk":
			Config.TickerActive = true
		case "-wc":
			Config.WorkerCount, e = number(i)
			skipnext = true
		default:
			return fmt.Errorf(UNK, a)
		}

		if e != nil {
			return e
		}
	}
	return nil
}

// printhelp - the templated usage text; then exit with the given status
func printhelp(status int) {
	const (
		FAIL = "printhelp() failed to execute help text template"
	)

	PrintVersion(*Config)
	PrintBuildInfo(*Config)

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"botpass":   Config.BotPasses,
		"conffile":  vv.CONFIGPROLIX,
		"cpus":      runtime.NumCPU(),
		"dbfile":    Config.SQLiteFile,
		"easll":     Config.LogLevel,
		"echoll":    Config.EchoLog,
		"home":      h,
		"host":      Config.HostIP,
		"maxtopics": Config.LdaMaxTopics,
		"port":      Config.HostPort,
		"projurl":   vv.PROJURL,
		"vmodel":    Config.VectorModel,
		"workers":   Config.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL)
	}
	fmt.Println(Msg.ColStyle(b.String()))

	os.Exit(status)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = false
	c.BotPasses = 0
	c.CheckinsFile = ""
	c.EdgesFile = ""
	c.EnquiriesFile = ""
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LdaGraph = false
	c.LdaMaxTopics = vv.LDAMAXCANDIDATE
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ManualGC = false
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.SelfTest = 0
	c.SQLiteFile = vv.DEFAULTSQLITEFILE
	c.TickerActive = vv.TICKERISACTIVE
	c.VectorChtHt = vv.DEFAULTCHRTHEIGHT
	c.VectorChtWd = vv.DEFAULTCHRTWIDTH
	c.VectorModel = vv.DEFAULTVECTORMODEL
	c.VectorNeighb = vv.VECTORNEIGHBORS
	c.VectorWebExt = false
	c.WorkerCount = runtime.NumCPU()

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// SetConfigPass - try to fill Config.PGLogin.Pass from the basic config files; postgres is optional, so a blank pass just disables it
func SetConfigPass() {
	const (
		FAIL6 = "Could not open '%s'"
		NOPG  = "no PostgreSQL credentials found; enquiries will load from '%s' into sqlite"
	)
	type ConfigFile struct {
		PostgreSQLPassword string
	}

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	acf := fmt.Sprintf("%s%s", h, vv.CONFIGBASIC)

	if Config.PGLogin.Pass != "" {
		return
	}

	cfa, ea := os.Open(cf)
	if ea != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, cf))
	}
	cfb, eb := os.Open(acf)
	if eb != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, acf))
	}

	defer func(cfa *os.File) {
		err := cfa.Close()
		if err != nil {
		} // the file was almost certainly not found in the first place...
	}(cfa)
	defer func(cfb *os.File) {
		err := cfb.Close()
		if err != nil {
		} // the file was almost certainly not found in the first place...
	}(cfb)

	decodera := json.NewDecoder(cfa)
	confa := ConfigFile{}
	erra := decodera.Decode(&confa)

	decoderb := json.NewDecoder(cfb)
	confb := ConfigFile{}
	errb := decoderb.Decode(&confb)

	if erra != nil && errb != nil {
		Msg.FYI(fmt.Sprintf(NOPG, Config.SQLiteFile))
		return
	}

	thecfg := ConfigFile{}
	if erra == nil {
		thecfg = confa
	} else {
		thecfg = confb
	}

	Config.PGLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		DBName: vv.DEFAULTPSQLDB,
		Pass:   thecfg.PostgreSQLPassword,
	}
}
