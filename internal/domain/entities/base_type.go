package entities

const (
	// BaseTypeIDDocument is the CMIS base type id of document objects.
	BaseTypeIDDocument = "cmis:document"
	// BaseTypeIDFolder is the CMIS base type id of folder objects.
	BaseTypeIDFolder = "cmis:folder"
)

// BaseType is the closed set of object categories the commands act on.
// Policies, relationships, items and anything unknown collapse into BaseTypeOther.
type BaseType int

const (
	BaseTypeOther BaseType = iota
	BaseTypeDocument
	BaseTypeFolder
)

// ParseBaseType maps a cmis:baseTypeId value onto a BaseType.
func ParseBaseType(baseTypeID string) BaseType {
	switch baseTypeID {
	case BaseTypeIDDocument:
		return BaseTypeDocument
	case BaseTypeIDFolder:
		return BaseTypeFolder
	default:
		return BaseTypeOther
	}
}

func (it BaseType) String() string {
	switch it {
	case BaseTypeDocument:
		return "document"
	case BaseTypeFolder:
		return "folder"
	default:
		return "other"
	}
}
