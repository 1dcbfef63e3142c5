package basehdl

// Package basehdl cung cấp base handler cho các Fiber handler trong ứng dụng.
// Bao gồm parse/validate request, transform DTO sang Model và xử lý filter/options MongoDB.

import (
	"bytes"
	"encoding/json"
	"fmt"
	basesvc "meta_helpdesk/internal/api/base/service"
	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/utility"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// FilterOptions cấu hình cho việc validate filter từ query string.
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody parse dữ liệu JSON từ request body vào struct input.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số lớn.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ValidateInput thực hiện validate dữ liệu đầu vào với validator struct tag,
// sau đó kiểm tra bổ sung các tag maxLength/min/max.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.String {
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		if field.Kind() == reflect.Int || field.Kind() == reflect.Int64 {
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải lớn hơn hoặc bằng %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}
			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải nhỏ hơn hoặc bằng %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T).
// Sử dụng struct tag `transform` để tự động convert các field (ví dụ: string → ObjectID).
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T).
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// transformInputToModel transform DTO sang Model dựa trên struct tag `transform`.
// Field không có tag được copy trực tiếp khi cùng tên và type tương thích.
// Hỗ trợ map field từ DTO sang Model với tên khác nhau thông qua option `map=<field_name>`.
func transformInputToModel[T any](input interface{}) (*T, error) {
	model := new(T)

	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model).Elem()
	if modelVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model phải là struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		if !inputField.CanInterface() {
			continue
		}
		fieldValue := inputField.Interface()

		transformTag := inputFieldType.Tag.Get("transform")
		if transformTag == "" {
			// Không có transform tag: copy trực tiếp nếu field cùng tên và type tương thích
			modelFieldVal := modelVal.FieldByName(inputFieldType.Name)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				continue
			}
			srcVal := reflect.ValueOf(fieldValue)
			if srcVal.Type().AssignableTo(modelFieldVal.Type()) {
				modelFieldVal.Set(srcVal)
			} else if srcVal.Type().ConvertibleTo(modelFieldVal.Type()) {
				modelFieldVal.Set(srcVal.Convert(modelFieldVal.Type()))
			}
			continue
		}

		transformConfig, err := utility.ParseTransformTag(transformTag)
		if err != nil {
			return nil, fmt.Errorf("lỗi parse transform tag cho field %s: %w", inputFieldType.Name, err)
		}

		// Xác định field target trong Model (mặc định cùng tên với field DTO)
		targetFieldName := inputFieldType.Name
		if transformConfig.MapTo != "" {
			targetFieldName = transformConfig.MapTo
		}

		modelField, found := modelType.FieldByName(targetFieldName)
		if !found {
			if transformConfig.Optional {
				continue
			}
			return nil, fmt.Errorf("không tìm thấy field '%s' trong Model (map từ field '%s' trong DTO)", targetFieldName, inputFieldType.Name)
		}

		transformedValue, err := utility.TransformFieldValue(fieldValue, transformConfig, modelField.Type)
		if err != nil {
			if transformConfig.Optional {
				continue
			}
			return nil, fmt.Errorf("lỗi transform field '%s' sang '%s': %w", inputFieldType.Name, targetFieldName, err)
		}
		if transformedValue == nil {
			continue
		}

		modelFieldVal := modelVal.FieldByName(targetFieldName)
		if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
			return nil, fmt.Errorf("không thể set giá trị vào field '%s' trong Model", targetFieldName)
		}

		transformedVal := reflect.ValueOf(transformedValue)
		if transformedVal.Type().AssignableTo(modelFieldVal.Type()) {
			modelFieldVal.Set(transformedVal)
		} else if transformedVal.Type().ConvertibleTo(modelFieldVal.Type()) {
			modelFieldVal.Set(transformedVal.Convert(modelFieldVal.Type()))
		} else {
			return nil, fmt.Errorf("không thể convert giá trị từ type %v sang type %v cho field '%s'", transformedVal.Type(), modelFieldVal.Type(), targetFieldName)
		}
	}

	return model, nil
}

// ProcessFilter parse và validate filter từ query string.
// String có format ObjectId trong các field *Id được tự động chuyển thành ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Áp dụng cho các field có tên kết thúc bằng "Id" hoặc "ID".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}
	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
// và MongoDB Extended JSON format {"$oid": "..."}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	switch v := value.(type) {
	case string:
		if isIDField && primitive.IsValidObjectID(v) {
			if objID, err := primitive.ObjectIDFromHex(v); err == nil {
				return objID
			}
		}
		return v
	case []interface{}:
		normalized := make([]interface{}, len(v))
		for i, item := range v {
			normalized[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalized
	case map[string]interface{}:
		// Extended JSON: {"$oid": "..."}
		if oidValue, hasOid := v["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				if objID, err := primitive.ObjectIDFromHex(oidStr); err == nil {
					return objID
				}
			}
			return v
		}
		// Operator map ($eq, $in, $nin, ...): xử lý đệ quy từng giá trị
		normalized := make(map[string]interface{})
		for key, val := range v {
			normalized[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalized
	default:
		return value
	}
}

// validateFilter kiểm tra tính hợp lệ của filter theo filterOptions.
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", h.filterOptions.MaxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		if utility.Contains(h.filterOptions.DeniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processMongoOptions parse options từ query string và chuyển đổi sang MongoDB options.
// Hỗ trợ: projection, sort, limit, skip. Thứ tự các field trong sort được giữ nguyên theo JSON gốc.
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	var sortBson bson.D
	if sortMap, ok := rawOptions["sort"].(map[string]interface{}); ok {
		sortBson = parseSortOrdered(optionsStr, sortMap)
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if sortBson != nil {
			opts.SetSort(sortBson)
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sortBson != nil {
		opts.SetSort(sortBson)
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// parseSortOrdered parse sort từ JSON string gốc để giữ nguyên thứ tự các field.
// json.Unmarshal vào map làm mất thứ tự key, nên phải đọc lại từng token từ raw JSON.
// Fallback về sortMap (thứ tự bất kỳ) nếu không parse được.
func parseSortOrdered(optionsJSON string, sortMap map[string]interface{}) bson.D {
	fallback := func() bson.D {
		sortBson := bson.D{}
		for field, value := range sortMap {
			if v, ok := value.(float64); ok && (v == 1 || v == -1) {
				sortBson = append(sortBson, bson.E{Key: field, Value: int(v)})
			}
		}
		return sortBson
	}

	var tempOptions map[string]json.RawMessage
	if err := json.Unmarshal([]byte(optionsJSON), &tempOptions); err != nil {
		return fallback()
	}
	sortRaw, ok := tempOptions["sort"]
	if !ok {
		return bson.D{}
	}

	decoder := json.NewDecoder(bytes.NewReader(sortRaw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil || token != json.Delim('{') {
		return fallback()
	}

	sortBson := bson.D{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			break
		}
		field, ok := keyToken.(string)
		if !ok {
			continue
		}

		valueToken, err := decoder.Token()
		if err != nil {
			break
		}

		var sortValue int
		switch v := valueToken.(type) {
		case json.Number:
			intVal, err := v.Int64()
			if err != nil {
				continue
			}
			sortValue = int(intVal)
		case float64:
			sortValue = int(v)
		default:
			continue
		}

		// Chỉ chấp nhận 1 (tăng dần) hoặc -1 (giảm dần)
		if sortValue != 1 && sortValue != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}

	if len(sortBson) == 0 {
		return fallback()
	}
	return sortBson
}

// validateMongoOptions kiểm tra tính hợp lệ của các options.
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}
	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if projection, ok := options["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(h.filterOptions.DeniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong projection vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if sort, ok := options["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(h.filterOptions.DeniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong sort vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị sort cho trường '%s' phải là 1 (tăng dần) hoặc -1 (giảm dần), giá trị hiện tại: %v", field, value),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit phải lớn hơn 0", common.StatusBadRequest, nil)
		}
		if limit > 1000 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit không được vượt quá 1000 để đảm bảo hiệu năng hệ thống", common.StatusBadRequest, nil)
		}
	}

	if skip, ok := options["skip"].(float64); ok && skip < 0 {
		return common.NewError(common.ErrCodeValidationFormat, "Giá trị skip không được âm", common.StatusBadRequest, nil)
	}

	return nil
}
