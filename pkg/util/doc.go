// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xeui: EUI-48/EUI-64 标识符值类型，十六进制文本编解码、整数互转、EUI-48 到 EUI-64 映射、
//     JSON/Text/Binary/SQL/BSON/CBOR/msgpack 序列化
//
// 设计原则：
//   - 值类型，零值可用，可比较、可作 map key
//   - 热路径零分配
//   - 错误可用 errors.Is 判断类别
package util
