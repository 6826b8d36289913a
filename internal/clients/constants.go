package clients

const (
	USER_AGENT             = "emotiflow-client/1.0 (+https://github.com/spacesedan/emotiflow)"
	WATSON_MODEL_ID_HEADER = "grpc-metadata-mm-model-id"
)
