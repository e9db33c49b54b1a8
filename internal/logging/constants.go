package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldRecordID    = "record_id"
	FieldLine        = "line"
	FieldCommand     = "command"
	FieldCount       = "count"
	FieldBalance     = "balance"
	FieldDelimiter   = "delimiter"
	FieldOutputFile  = "output_file"
)
