package vocab

// XSD is the XML Schema datatype namespace IRI.
const XSD = "http://www.w3.org/2001/XMLSchema#"

// The XML schema built-in datatypes (xsd), grouped the way the teacher's
// xsd subpackage groups them:
// https://www.w3.org/TR/xmlschema-2/
const (
	// Core types:

	XSDString  = XSD + "string"
	XSDBoolean = XSD + "boolean"
	XSDDecimal = XSD + "decimal"
	XSDInteger = XSD + "integer"

	// IEEE floating-point numbers:

	XSDDouble = XSD + "double"
	XSDFloat  = XSD + "float"

	// Time and date:

	XSDDate          = XSD + "date"
	XSDTime          = XSD + "time"
	XSDDateTime      = XSD + "dateTime"
	XSDDateTimeStamp = XSD + "dateTimeStamp"

	// Recurring and partial dates:

	XSDYear              = XSD + "gYear"
	XSDMonth             = XSD + "gMonth"
	XSDDay               = XSD + "gDay"
	XSDYearMonth         = XSD + "gYearMonth"
	XSDDuration          = XSD + "duration"
	XSDYearMonthDuration = XSD + "yearMonthDuration"
	XSDDayTimeDuration   = XSD + "dayTimeDuration"

	// Limited-range integer numbers:

	XSDByte     = XSD + "byte"
	XSDLong     = XSD + "long"
	XSDInt      = XSD + "int"
	XSDShort    = XSD + "short"
	XSDNonNegativeInteger = XSD + "nonNegativeInteger"

	// Other commonly seen datatypes:

	XSDAnyURI = XSD + "anyURI"
	XSDName   = XSD + "Name"
	XSDNMTOKEN = XSD + "NMTOKEN"
)
