// Package export reads and writes black-library export files and reports
// content hashes that repeat within a single item.
//
// An export file has one record per line, comma separated, in the column
// order of the store's md5_sum table:
//
//	uuid,index_num,md5_sum,date,sec_id,seq_num,version_num
//
// Only the identifier (field 0) and the hash (field 2) take part in duplicate
// detection. The remaining columns are carried through untouched.
//
// The report printed by Registry.WriteReport keeps the historical line format
// "md5: <identifier> len: <count>". The label says md5 but the value is the
// item identifier; existing consumers of the report depend on that layout.
package export
