package htmltok

// state is the tokenizer's lexical state. The zero value is stateText,
// the state a freshly constructed Tokenizer starts in.
//
// Transitions are implemented as one method per state in tokenizer.go,
// keyed off this integer so that the driver's step method can use a
// dense jump table instead of a chain of type switches.
type state int

// State is a read-only alias exposing the otherwise-unexported state
// type to callers that need to accept it in an OnError callback (see
// Handler.OnError); its only useful external operation is String().
type State = state

const (
	stateText state = iota
	stateBeforeTagName
	stateInTagName
	stateBeforeClosingTagName
	stateInClosingTagName
	stateAfterClosingTagName

	stateBeforeAttributeName
	stateInAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateInAttributeValueDq
	stateInAttributeValueSq
	stateInAttributeValueNq
	stateInSelfClosingTag

	stateBeforeDeclaration
	stateInDeclaration
	stateInProcessingInstruction

	stateBeforeComment
	stateInComment
	stateAfterComment1
	stateAfterComment2

	stateBeforeCdata1
	stateBeforeCdata2
	stateBeforeCdata3
	stateBeforeCdata4
	stateBeforeCdata5
	stateBeforeCdata6
	stateInCdata
	stateAfterCdata1
	stateAfterCdata2

	stateBeforeSpecial
	stateBeforeSpecialEnd

	stateBeforeEntity
	stateBeforeNumericEntity
	stateInNamedEntity
	stateInNumericEntity
	stateInHexEntity

	stateMax // sentinel, always last
)

var stateNames = [...]string{
	stateText:                     "Text",
	stateBeforeTagName:            "BeforeTagName",
	stateInTagName:                "InTagName",
	stateBeforeClosingTagName:     "BeforeClosingTagName",
	stateInClosingTagName:         "InClosingTagName",
	stateAfterClosingTagName:      "AfterClosingTagName",
	stateBeforeAttributeName:      "BeforeAttributeName",
	stateInAttributeName:          "InAttributeName",
	stateAfterAttributeName:       "AfterAttributeName",
	stateBeforeAttributeValue:     "BeforeAttributeValue",
	stateInAttributeValueDq:       "InAttributeValueDq",
	stateInAttributeValueSq:       "InAttributeValueSq",
	stateInAttributeValueNq:       "InAttributeValueNq",
	stateInSelfClosingTag:         "InSelfClosingTag",
	stateBeforeDeclaration:        "BeforeDeclaration",
	stateInDeclaration:            "InDeclaration",
	stateInProcessingInstruction:  "InProcessingInstruction",
	stateBeforeComment:            "BeforeComment",
	stateInComment:                "InComment",
	stateAfterComment1:            "AfterComment1",
	stateAfterComment2:            "AfterComment2",
	stateBeforeCdata1:             "BeforeCdata1",
	stateBeforeCdata2:             "BeforeCdata2",
	stateBeforeCdata3:             "BeforeCdata3",
	stateBeforeCdata4:             "BeforeCdata4",
	stateBeforeCdata5:             "BeforeCdata5",
	stateBeforeCdata6:             "BeforeCdata6",
	stateInCdata:                  "InCdata",
	stateAfterCdata1:              "AfterCdata1",
	stateAfterCdata2:              "AfterCdata2",
	stateBeforeSpecial:            "BeforeSpecial",
	stateBeforeSpecialEnd:         "BeforeSpecialEnd",
	stateBeforeEntity:             "BeforeEntity",
	stateBeforeNumericEntity:      "BeforeNumericEntity",
	stateInNamedEntity:            "InNamedEntity",
	stateInNumericEntity:          "InNumericEntity",
	stateInHexEntity:              "InHexEntity",
}

func (s state) String() string {
	if s >= 0 && int(s) < len(stateNames) && stateNames[s] != "" {
		return stateNames[s]
	}
	return "UnknownState"
}

// cdataLetters holds the upper-case letters the BeforeCdata1..5 states
// expect next, indexed by (state - stateBeforeCdata1).
var cdataLetters = [5]byte{'C', 'D', 'A', 'T', 'A'}
