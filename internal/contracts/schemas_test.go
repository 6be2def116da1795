package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("no-such-schema", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate("login", []byte(`{"email": `))
	assert.Error(t, err)
}

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			"valid",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"secret123"}`,
			true,
		},
		{
			"valid with phone",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"secret123","phone":"+77001234567"}`,
			true,
		},
		{
			"explicit null phone",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"secret123","phone":null}`,
			true,
		},
		{
			"missing password",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com"}`,
			false,
		},
		{
			"password too short",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"123"}`,
			false,
		},
		{
			"bad email format",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"not-an-email","password":"secret123"}`,
			false,
		},
		{
			"unexpected extra field",
			`{"firstName":"Aigerim","lastName":"Satpayeva","email":"aigerim@example.com","password":"secret123","role":"admin"}`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("register", []byte(tt.body))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Login(t *testing.T) {
	assert.NoError(t, Validate("login", []byte(`{"email":"aigerim@example.com","password":"secret123"}`)))
	assert.Error(t, Validate("login", []byte(`{"email":"aigerim@example.com"}`)))
}

func TestValidate_Property(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			"valid minimal",
			`{"title":"2-комнатная квартира","description":"Светлая квартира в новом ЖК","type":"sale","propertyType":"apartment","price":25000000,"area":54.5,"address":"пр. Мангилик Ел, 42","contactPhone":"+77001234567"}`,
			true,
		},
		{
			"valid with nullable fields",
			`{"title":"Дом","description":"Дом с участком","type":"sale","propertyType":"house","price":60000000,"area":180,"rooms":null,"address":"ул. Кабанбай батыра, 5","contactPhone":"+77001234567","contactEmail":null,"latitude":51.1282,"longitude":71.4304,"yearBuilt":2020}`,
			true,
		},
		{
			"unknown deal type",
			`{"title":"Квартира","description":"...","type":"lease","propertyType":"apartment","price":25000000,"area":54.5,"address":"адрес","contactPhone":"+77001234567"}`,
			false,
		},
		{
			"zero price",
			`{"title":"Квартира","description":"...","type":"sale","propertyType":"apartment","price":0,"area":54.5,"address":"адрес","contactPhone":"+77001234567"}`,
			false,
		},
		{
			"negative area",
			`{"title":"Квартира","description":"...","type":"sale","propertyType":"apartment","price":25000000,"area":-10,"address":"адрес","contactPhone":"+77001234567"}`,
			false,
		},
		{
			"bad status",
			`{"title":"Квартира","description":"...","type":"sale","propertyType":"apartment","price":25000000,"area":54.5,"address":"адрес","contactPhone":"+77001234567","status":"archived"}`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("property", []byte(tt.body))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Contact(t *testing.T) {
	assert.NoError(t, Validate("contact",
		[]byte(`{"name":"Bolat","email":"bolat@example.com","subject":"Вопрос","message":"Актуально ли объявление?"}`)))
	assert.NoError(t, Validate("contact",
		[]byte(`{"name":"Bolat","email":"bolat@example.com","phone":null,"subject":"Вопрос","message":"Актуально ли объявление?"}`)))
	assert.NoError(t, Validate("contact",
		[]byte(`{"name":"Bolat","email":"bolat@example.com","phone":"+77001234567","subject":"Вопрос","message":"Актуально ли объявление?"}`)))
	assert.Error(t, Validate("contact",
		[]byte(`{"name":"Bolat","email":"bolat@example.com","subject":"Вопрос"}`)))
}

func TestValidate_Estimate(t *testing.T) {
	assert.NoError(t, Validate("estimate",
		[]byte(`{"propertyType":"apartment","district":"Есиль","area":54.5,"condition":"good"}`)))
	assert.NoError(t, Validate("estimate",
		[]byte(`{"propertyType":"land","district":"Нура-Есиль","area":1000}`)))
	assert.Error(t, Validate("estimate",
		[]byte(`{"propertyType":"apartment","district":"Есиль"}`)))
	assert.Error(t, Validate("estimate",
		[]byte(`{"propertyType":"apartment","district":"Есиль","area":54.5,"condition":"renovated"}`)))
}
