package handler

import "encoding/json"

type eventKind int

const (
	eventUnknown eventKind = iota
	eventHTTP
	eventSNS
	eventSQS
)

// eventProbe decodes just enough of a payload to classify it. SQS
// records carry `eventSource`, SNS records `EventSource` and an `Sns`
// body; the case-insensitive JSON match folds both into one field.
// API Gateway v2 requests carry a route key and a request context.
type eventProbe struct {
	RouteKey       string          `json:"routeKey"`
	RequestContext json.RawMessage `json:"requestContext"`
	Records        []struct {
		EventSource string          `json:"eventSource"`
		SNS         json.RawMessage `json:"Sns"`
	} `json:"Records"`
}

func detectEvent(raw json.RawMessage) eventKind {
	var p eventProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return eventUnknown
	}

	switch {
	case len(p.Records) > 0 && p.Records[0].EventSource == "aws:sqs":
		return eventSQS
	case len(p.Records) > 0 && (p.Records[0].EventSource == "aws:sns" || len(p.Records[0].SNS) > 0):
		return eventSNS
	case p.RouteKey != "" || len(p.RequestContext) > 0:
		return eventHTTP
	}
	return eventUnknown
}
