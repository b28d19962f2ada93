package gen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/classfile"
	"github.com/digitalsanctum/svcgen/docfmt"
	"github.com/digitalsanctum/svcgen/emitclass"
	"github.com/digitalsanctum/svcgen/generr"
	"github.com/digitalsanctum/svcgen/internal/trace"
	"github.com/digitalsanctum/svcgen/namesan"
	"github.com/digitalsanctum/svcgen/xmlcfg"
)

// generateOperation is the OperationGenerator orchestration (spec §4.7,
// component C7): resolve the named operation, emit its input (and, if
// declared, output) class trees, merge the operation method into the
// service's client class, and write every touched class.
func (g *Generator) generateOperation(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	op, ok := g.def.Operation(name)
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, name, "operation not found")
	}

	r := newRun()

	if err := g.generateInputTree(r, op.InputShape(), op); err != nil {
		return err
	}

	var output apidef.OutputBinding
	hasOutput := false
	if ob, ok := op.Output(); ok {
		output = ob
		hasOutput = true
		if err := g.generateResultTree(r, output.ShapeName, op, output); err != nil {
			return err
		}
	}

	client := classfile.LoadOrCreate(g.writer, g.namespace, clientClassName(g.namespace))
	g.ensureServiceMetadata(client)

	methodName := lowerFirst(op.Name())
	client.RemoveMethod(methodName)
	method, err := g.buildOperationMethod(op, hasOutput, output)
	if err != nil {
		return err
	}
	client.AddMethod(method)

	if err := g.writer.Write(client); err != nil {
		return generr.NewIOError(client.Namespace+"\\"+client.Name, err)
	}

	trace.Info(ctx, g.logger, "operation generated",
		slog.String("operation", name),
		slog.Int("input_classes", len(r.inputClasses)),
		slog.Int("result_classes", len(r.resultClasses)),
	)
	return nil
}

// ensureServiceMetadata adds getServiceCode/getSignatureVersion to the
// client class only when the ServiceDefinition supplies the corresponding
// metadata and the methods are not already present (spec §4.7: these are
// added once, not on every operation).
func (g *Generator) ensureServiceMetadata(client *emitclass.Class) {
	if prefix, ok := g.def.EndpointPrefix(); ok && !client.HasMethod("getServiceCode") {
		client.AddMethod(emitclass.Method{
			Name:       "getServiceCode",
			Visibility: emitclass.Public,
			ReturnType: "string",
			Body:       fmt.Sprintf("return '%s';", prefix),
		})
	}
	if version, ok := g.def.SignatureVersion(); ok && !client.HasMethod("getSignatureVersion") {
		client.AddMethod(emitclass.Method{
			Name:       "getSignatureVersion",
			Visibility: emitclass.Public,
			ReturnType: "string",
			Body:       fmt.Sprintf("return '%s';", version),
		})
	}
}

// buildOperationMethod renders the client method for op: construct and
// validate the input, dispatch the HTTP request, and wrap the response
// in a Result (or the runtime's base Result if op declares no output).
func (g *Generator) buildOperationMethod(op *apidef.Operation, hasOutput bool, output apidef.OutputBinding) (emitclass.Method, error) {
	inputShape, ok := g.def.Shape(op.InputShape())
	if !ok {
		return emitclass.Method{}, generr.NewSchemaError(generr.CodeShapeNotFound, op.InputShape(), "operation input shape not found")
	}
	inputClassName := namesan.Sanitize(inputShape.Name())

	required := len(inputShape.RequiredNames()) > 0
	param := emitclass.Param{Name: "args", Type: "array|" + inputClassName, HasDefault: !required, Default: "[]"}

	returnType := "\\Aws\\Result"
	if hasOutput {
		outShape, ok := g.def.Shape(output.ShapeName)
		if !ok {
			return emitclass.Method{}, generr.NewSchemaError(generr.CodeShapeNotFound, output.ShapeName, "operation output shape not found")
		}
		returnType = "\\" + g.namespace + "\\Result\\" + namesan.Sanitize(outShape.Name())
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("$input = %s::create($args);", inputClassName))
	lines = append(lines, "$input->validate();")

	payloadExpr, err := g.payloadExpr(inputShape)
	if err != nil {
		return emitclass.Method{}, err
	}
	lines = append(lines, payloadExpr...)
	lines = append(lines, fmt.Sprintf(
		"$response = $this->getResponse('%s', $input->requestUri(), $input->requestHeaders(), $input->requestQuery(), $payload);",
		op.HTTP().Method))

	if hasOutput {
		outShape, _ := g.def.Shape(output.ShapeName)
		resultClassName := namesan.Sanitize(outShape.Name())
		streamingOut, err := g.hasStreamingPayload(outShape)
		if err != nil {
			return emitclass.Method{}, err
		}
		lines = append(lines, fmt.Sprintf("$result = new %s();", resultClassName))
		if streamingOut {
			lines = append(lines, "$result->populateResult($response, $this->httpClient);")
		} else {
			lines = append(lines, "$result->populateResult($response);")
		}
		lines = append(lines, "return $result;")
	} else {
		lines = append(lines, "return new \\Aws\\Result();")
	}

	return emitclass.Method{
		Name:       lowerFirst(op.Name()),
		Visibility: emitclass.Public,
		ReturnType: returnType,
		Doc:        operationDoc(g.def, op),
		Params:     []emitclass.Param{param},
		Body:       strings.Join(lines, "\n"),
	}, nil
}

// payloadExpr renders the statements that compute $payload: the member
// getter directly when the payload is streaming (spec §8 Scenario F, no
// XmlBuilder or form assembly involved), an XmlBuilder invocation
// configured from the pruned shape subtree when the input has a
// structure-typed payload member (spec §4.7 step 4, §4.7.1), or
// $input->requestBody() directly otherwise.
func (g *Generator) payloadExpr(inputShape *apidef.Shape) ([]string, error) {
	payloadName, ok := inputShape.Payload()
	if !ok {
		return []string{"$payload = $input->requestBody();"}, nil
	}

	member, _ := inputShape.Member(payloadName)
	if member.Streaming() {
		return []string{fmt.Sprintf(`$payload = $input->get%s() ?? "";`, member.Name())}, nil
	}
	memberShape, ok := g.def.Shape(member.ShapeName())
	if !ok {
		return nil, generr.NewSchemaError(generr.CodeShapeNotFound, member.ShapeName(), "payload member shape not found")
	}
	if memberShape.Kind() != apidef.ShapeStructure {
		return []string{"$payload = $input->requestBody();"}, nil
	}

	namespaceURI := member.XMLNamespaceURI()
	if namespaceURI == "" {
		namespaceURI = g.xmlNamespacePrefix
	}
	cfg, err := xmlcfg.Extract(g.def, memberShape.Name(), member.LocationName(), namespaceURI)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("$xmlConfig = %s;", renderXMLConfig(cfg)),
		"$payload = (new \\Aws\\Api\\XmlBuilder($xmlConfig))->build($input->requestBody());",
	}, nil
}

func operationDoc(def apidef.ServiceDefinition, op *apidef.Operation) string {
	doc := op.Documentation()
	if doc == "" {
		return ""
	}
	res, err := docfmt.Format(doc)
	if err != nil {
		return ""
	}
	return res.Body
}
