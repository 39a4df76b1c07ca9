package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want Backend
	}{
		{key: "DS0000000001", want: ExternalService},
		{key: "DS9876543210", want: ExternalService},
		{key: "DS000000001", want: ObjectStore},
		{key: "DS00000000011", want: ObjectStore},
		{key: "ds0000000001", want: ObjectStore},
		{key: "DS000000000A", want: ObjectStore},
		{key: " DS0000000001", want: ObjectStore},
		{key: "DS0000000001\n", want: ObjectStore},
		{key: "DS0000000001.pdf", want: ObjectStore},
		{key: "abc123.pdf", want: ObjectStore},
		{key: "", want: ObjectStore},
		{key: "DS٠١٢٣٤٥٦٧٨٩", want: ObjectStore},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.key))
		})
	}
}

func TestBackend_String(t *testing.T) {
	assert.Equal(t, "document_record_service", ExternalService.String())
	assert.Equal(t, "object_store", ObjectStore.String())
}
