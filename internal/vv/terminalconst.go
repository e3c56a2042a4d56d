//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MINCONFIG = `
{"PostgreSQLPassword": "YOURPASSWORDHERE"}
`

	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2025-26"
	PROJAUTH = "T. Mercer"
	PROJMAIL = "tmercer@fastmail.com"
	PROJURL  = "https://github.com/t-mercer/EnquiryAnalysisServer"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-btC0 C2{num}C0    run the traffic bot for C2{num}C0 passes after launch [C6currentC0: C3{{.botpass}}C0]
   C1-bwC0          disable color output in the console
   C1-dbC0 C2{string}C0 path to the sqlite data file [C6currentC0: C3{{.dbfile}}C0]
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.easll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-ktC0 C2{num}C0    topic count ceiling for the lda selection loop [C6currentC0: C3{{.maxtopics}}C0]
   C1-mdC0 C2{string}C0 set the neighbour vector model type; available: C3lexvecC0 and C3w2vC0 [C6currentC0: C3{{.vmodel}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-pgC0 C2{string}C0 supply full PostgreSQL credentials C4(*)C0
   C1-qC0           quiet startup: suppress copyright notice
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-stC0          run the self-test suite at launch; repeat the flag to iterate: e.g., "C1-st -stC0" will run twice
   C1-tkC0          turn on the uptime ticker [unavailable if OS is Windows]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
     (*) S3exampleS0:
         C4"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"enquiryDB\" ,\"User\": \"eas_rd\"}"C0

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration files at
             C3{{.projurl}}C0
`
)
