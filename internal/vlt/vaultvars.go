//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

var (
	WebsocketPool = WSFillNewPool()
	WSInfo        = BuildWSInfoHubIf()
)
