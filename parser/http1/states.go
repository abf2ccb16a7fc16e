package http1

type parserState uint8

const (
	eRequestLine parserState = iota + 1
	eMethod
	ePath
	eQuery
	eProto

	eResponseLine
	eStatusSP
	eStatus
	eReasonSP
	eReason

	eCR
	eLF

	eHeaderNext
	eHeaderKey
	eHeaderKeySP
	eHeaderColonSP
	eHeaderValue
)
