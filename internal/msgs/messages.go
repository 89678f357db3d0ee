package msgs

const (
	MsgOperationSuccessful      = "operation successful"
	MsgOperationFailed          = "operation failed"
	MsgUserCreatedSuccessfully  = "user created successfully"
	MsgYouMustLoginFirst        = "you must login first"
	MsgMessageSentSuccessfully  = "message sent successfully"
	MsgMessageMarkedAsRead      = "message marked as read"
	MsgMessageDeleted           = "message deleted"
	MsgFileUploadedSuccessfully = "file uploaded successfully"
)
